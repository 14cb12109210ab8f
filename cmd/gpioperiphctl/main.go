// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// gpioperiphctl exercises a board's peripheral attribute surface from the
// command line: list registered peripherals, read an attribute, or write
// one to trigger a command.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"periph.io/x/host/v3"

	gp "github.com/indigo-embedded/gpioperiph"
	"github.com/indigo-embedded/gpioperiph/board"
)

func mainImpl() error {
	verbose := flag.Bool("v", false, "enable verbose logs")
	timeout := flag.Duration("timeout", 15*time.Second, "command timeout")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)

	if flag.NArg() < 1 {
		return errors.New("usage: gpioperiphctl <list|read|write> [peripheral] [attribute] [value]")
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	if _, err := board.New(); err != nil {
		return err
	}

	switch cmd := flag.Arg(0); cmd {
	case "list":
		return runList()
	case "read":
		if flag.NArg() != 3 {
			return errors.New("usage: gpioperiphctl read <peripheral> <attribute>")
		}
		return runRead(flag.Arg(1), flag.Arg(2))
	case "write":
		if flag.NArg() != 4 {
			return errors.New("usage: gpioperiphctl write <peripheral> <attribute> <value>")
		}
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		return runWrite(ctx, flag.Arg(1), flag.Arg(2), flag.Arg(3))
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runList() error {
	for _, p := range gp.All() {
		fmt.Printf("%s\t%s\t%s\n", p.Name, p.Kind, p.Description)
	}
	return nil
}

func runRead(name, attr string) error {
	p, ok := gp.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown peripheral %q", name)
	}
	v, err := gp.NewAttributeSet(p).ReadAttr(attr)
	if err != nil {
		return err
	}
	fmt.Print(v)
	return nil
}

func runWrite(ctx context.Context, name, attr, value string) error {
	p, ok := gp.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown peripheral %q", name)
	}
	return gp.NewAttributeSet(p).WriteAttr(ctx, attr, value)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "gpioperiphctl: %s.\n", err)
		os.Exit(1)
	}
}
