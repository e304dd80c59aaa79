package contacts

// Version is the release version of the contacts module.
const Version = "0.1.0"
