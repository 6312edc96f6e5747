package internal

// Version is the phonetictext release version.
const Version = "0.3.0"
