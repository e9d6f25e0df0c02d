// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app lifecycle; this package only defines
// the settings it reads: listen port, API key, body limit and read timeout.
//
// # Usage
//
//	app := fiber.New(fiber.Config{
//	    BodyLimit:   cfg.Server.BodyLimit(),
//	    ReadTimeout: cfg.Server.ReadTimeout(),
//	})
//	app.Listen(cfg.Server.Address())
package server
