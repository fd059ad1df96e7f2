package domain

import "strings"

const (
	patchChainSeparator = "++"
	patchPartSeparator  = "+"
)

// DecodePatchName returns the key of the package a patch file applies to.
//
// Patch files are named "[scope+]name[++parent...]+version.patch", where a
// "++" chain lists the parents the patched copy is nested in. Only the last
// element of the chain is the patched package. scope is the name of the
// directory the file was found in, if any (e.g. "@org").
func DecodePatchName(fileName, scope string) (PackageKey, bool) {
	name := fileName
	if scope != "" {
		name = scope + patchPartSeparator + fileName
	}

	chain := strings.Split(name, patchChainSeparator)
	last := strings.TrimSuffix(chain[len(chain)-1], PatchFileExt)
	parts := strings.Split(last, patchPartSeparator)

	switch len(parts) {
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", false
		}
		return NewPackageKey(parts[0], parts[1]), true
	case 3:
		if parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return "", false
		}
		return NewPackageKey(parts[0]+"/"+parts[1], parts[2]), true
	default:
		return "", false
	}
}
