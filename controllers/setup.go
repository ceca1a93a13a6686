package controllers

import "sufra/client"

// the upstream api client shared by every handler, set once at startup
var api *client.Client

func Setup(c *client.Client) {
	api = c
}
