package v1

// BasePath is the prefix of every versioned API route
const BasePath = "/api"
