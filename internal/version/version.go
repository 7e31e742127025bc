package version

// Version is the semantic version of the docatom client. Overridden at build
// time via -ldflags "-X github.com/docatom/docatom-go/internal/version.Version=...".
var Version = "0.3.0"
