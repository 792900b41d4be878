// Command generate runs ent codegen for the invoice, party and upload_job
// schemas. Run from the repository root: go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "invoice-tracker/gen/ent",
			Schema:  "invoice-tracker/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
