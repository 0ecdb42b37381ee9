package main

// General API documentation for swaggo. Run `swag init -g cmd/modelgw/docs.go`
// and build with -tags=swagger to serve the UI.
//
// @title           modelgw API
// @version         1.0
// @description     HTTP gateway for local LLM text generation with model resolution and on-demand pulls.
//
// @BasePath  /
//
// @schemes http
