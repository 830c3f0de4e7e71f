package v1

// BasePath is the prefix of every version 1 API route.
const BasePath = "/api/v1"
