// Package paths resolves which shell rc file(s) srap should append to.
//
// It handles:
//
//   - the table of supported shells and their rc files
//   - login shell detection from $SHELL
//   - the fixed candidate list used by --all
//   - expansion of a leading "~" using $HOME
//
// # Environment Variables
//
//   - HOME: replaces a leading "~". When unset an empty string is used and a
//     warning is reported, so "~/.bashrc" becomes the relative ".bashrc".
//   - SHELL: the login shell. Required in single-target mode when no
//     explicit file was given.
//
// # Usage
//
//	r := paths.NewResolver(os.LookupEnv)
//	res, err := r.Resolve(cfg)
//	if err != nil {
//	    return err
//	}
//	for _, target := range res.Targets {
//	    // ...
//	}
package paths
