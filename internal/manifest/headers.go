package manifest

import "path"

// Headers returns the header files handed to the binding generator for a
// vendor tree. Order is significant: the generator parses them in
// sequence, and the wrapper header comes last.
func Headers(vendorDir string) []string {
	libtsk := path.Join(vendorDir, "tsk")
	return []string{
		path.Join(libtsk, "libtsk.h"),
		path.Join(libtsk, "base", "tsk_base.h"),
		path.Join(libtsk, "fs", "tsk_fs.h"),
		path.Join(libtsk, "img", "tsk_img.h"),
		path.Join(libtsk, "vs", "tsk_vs.h"),
		"tsk3.h",
	}
}
