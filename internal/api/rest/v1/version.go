package v1

// BasePath is the URL prefix of version 1 of the textbook RSA service API.
const BasePath = "/api/v1/trs"
