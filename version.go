package tagmend

// Version is the semantic version of the tagmend library.
const Version = "0.1.0"
