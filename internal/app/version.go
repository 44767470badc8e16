package app

// Version is overridden at build time with -ldflags "-X ...app.Version=v1.2.3".
var Version = "dev"
