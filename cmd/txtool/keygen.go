package main

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
)

type keygenCommand struct {
	Count int `long:"count" description:"number of key pairs" default:"1"`

	app *app
}

func (c *keygenCommand) Execute([]string) error {
	if c.Count < 1 {
		return errors.New("count must be positive")
	}
	for i := 0; i < c.Count; i++ {
		kp, err := keypair.Random(nil)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.app.out, "%s %s\n", kp.Address(), kp.Seed()); err != nil {
			return err
		}
	}
	return nil
}
