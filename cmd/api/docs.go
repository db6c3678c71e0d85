package main

// @title           POS API
// @version         1.0
// @description     Point of sale backend: catalog, checkout and billing

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:5000
// @BasePath  /api
