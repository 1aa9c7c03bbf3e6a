package fbx

import "golang.org/x/text/unicode/norm"

// SanitizeName normalizes an object name to NFC before it's combined with
// NameSeparator and written into the file. Source scene graphs pull names
// out of asset pipelines with their own text encodings (the same problem
// utils/conv.go solves for legacy game text); an unnormalized name can
// contain a decomposed accent sequence that round-trips through different
// DCC tools as a different byte length, which would make the 255-byte
// NameTooLongError boundary inconsistent between exporters.
func SanitizeName(s string) string {
	return norm.NFC.String(s)
}
