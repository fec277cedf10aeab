// Package main is the entry point for the application.
//
// @title Products API
// @version 1.0
// @description CRUD API for products with validation and single-origin CORS
//
// @host localhost:4000
// @BasePath /api
// @schemes http https
package main

import "github.com/yourorg/products-api/cmd/productsapi/cmd"

func main() {
	cmd.Execute()
}
