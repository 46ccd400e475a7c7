package version

// Version is the semantic version of the azpull CLI.
var Version = "0.1.0"
