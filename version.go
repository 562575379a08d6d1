package minilisp

// Version is the interpreter release surfaced by the CLI banner.
const Version = "0.1.0"
