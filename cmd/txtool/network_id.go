package main

import "fmt"

type networkIDCommand struct {
	app *app
}

func (c *networkIDCommand) Execute([]string) error {
	net, err := c.app.network()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.app.out, "%s %s\n", net.ID().Hex(), net.Name())
	return err
}
