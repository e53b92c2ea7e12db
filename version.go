package main

// Version is the releasever CLI version.
var Version = "1.2.0"
