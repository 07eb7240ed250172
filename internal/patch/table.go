package patch

import (
	"fmt"
	"path"
	"strings"
)

// fsNameIncludes maps TZNAME to the glibc spelling when <time.h> does not
// define it.
const fsNameIncludes = `#include "tsk_fs_i.h"

#include <time.h>

#ifndef TZNAME
#define TZNAME __tzname
#endif`

// fsOpenersDecl moves the opener table and loop counter to function scope,
// ahead of the first statement.
const fsOpenersDecl = `int i = 0;
    const char *name_first;
    const struct {
        char* name;
        TSK_FS_INFO* (*open)(TSK_IMG_INFO*, TSK_OFF_T,
                             TSK_FS_TYPE_ENUM, uint8_t);
        TSK_FS_TYPE_ENUM type;
    } FS_OPENERS[] = {
        { "NTFS",     ntfs_open,    TSK_FS_TYPE_NTFS_DETECT    },
        { "FAT",      fatfs_open,   TSK_FS_TYPE_FAT_DETECT     },
        { "EXT2/3/4", ext2fs_open,  TSK_FS_TYPE_EXT_DETECT     },
        { "UFS",      ffs_open,     TSK_FS_TYPE_FFS_DETECT     },
        { "YAFFS2",   yaffs2_open,  TSK_FS_TYPE_YAFFS2_DETECT  },
#if TSK_USE_HFS
        { "HFS",      hfs_open,     TSK_FS_TYPE_HFS_DETECT     },
#endif
        { "ISO9660",  iso9660_open, TSK_FS_TYPE_ISO9660_DETECT }
    };

    if (a_img_info == NULL) {`

// rawIncludes adds the POSIX headers raw.c uses and falls back to the glibc
// spellings of the stat mode macros.
const rawIncludes = `#include "raw.h"

#ifndef TSK_WIN32
#include <sys/types.h>
#include <sys/stat.h>
#include <unistd.h>
#include <fcntl.h>
#endif

#ifndef S_IFMT
#define S_IFMT __S_IFMT
#endif

#ifndef S_IFDIR
#define S_IFDIR __S_IFDIR
#endif`

// Table returns the full rewrite table for one vendor release. vendorDir is
// the vendor checkout relative to the project root, version the datestamp
// form and packageVersion the RFC 2822 form of the release stamp.
func Table(vendorDir, version, packageVersion string) []FileRuleSet {
	return []FileRuleSet{
		{
			// Restrict the autoconf output to the library subtree; the
			// tools and tests are never built into the extension.
			Path: path.Join(vendorDir, "configure.ac"),
			Rules: []Rule{
				SubFunc(`([a-z_/]+)/Makefile`, func(groups []string) string {
					if strings.HasPrefix(groups[1], "tsk") {
						return groups[0]
					}
					return ""
				}),
			},
		},
		{
			Path: path.Join(vendorDir, "Makefile.am"),
			Rules: []Rule{
				Sub(`SUBDIRS = .+`, "SUBDIRS = tsk"),
			},
		},
		{
			Path: "class_parser.py",
			Rules: []Rule{
				Sub(`VERSION = "[^"]+"`, fmt.Sprintf("VERSION = %q", version)),
			},
		},
		{
			Path: "dpkg/changelog",
			Rules: []Rule{
				Sub(`pytsk3 \([^\)]+\)`, fmt.Sprintf("pytsk3 (%s-1)", version)),
				Sub(`(<[^>]+>).+`, "${1}  "+packageVersion),
			},
		},
		{
			Path: path.Join(vendorDir, "tsk/fs/fs_name.c"),
			Rules: []Rule{
				Sub(`#include "tsk_fs_i.h"`, fsNameIncludes),
			},
		},
		{
			// Order matters here: the stock declarations are commented out
			// first, then the block that reintroduces them at function scope
			// is spliced in ahead of the first statement.
			Path: path.Join(vendorDir, "tsk/fs/fs_open.c"),
			Rules: []Rule{
				Sub(`const char \*name_first;`, "/* const char *name_first; */"),
				Sub(`        const struct {`, "        /* const struct {"),
				Sub(`        };`, "        }; */"),
				Sub(`if \(a_img_info == NULL\) {`, fsOpenersDecl),
				Sub(`for \(int i = 0;`, "for (i = 0;"),
			},
		},
		{
			Path: path.Join(vendorDir, "tsk/img/raw.c"),
			Rules: []Rule{
				Sub(`#include "raw.h"`, rawIncludes),
			},
			// Release-specific reorder, applied after the rules.
			Swap: &LineSwap{Remove: 381, Insert: 372},
		},
	}
}
