package redis

import (
	"fmt"
	"strings"
)

const DefaultDatabases = 16

type Options struct {
	// Dir and DBFilename locate the RDB file, reported by CONFIG GET.
	Dir        string
	DBFilename string
	// Databases is the number of databases SELECT accepts.
	Databases int
}

func (o Options) String() string {
	builder := new(strings.Builder)
	fmt.Fprintf(builder, "Dir: %v\n", o.Dir)
	fmt.Fprintf(builder, "DBFilename: %v\n", o.DBFilename)
	fmt.Fprintf(builder, "Databases: %v\n", o.Databases)
	return builder.String()
}
