/*
 * Copyright (C) 2024 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package proof

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/santhosh-tekuri/jsonschema"
	"gopkg.in/yaml.v3"
)

// Templates holds the built-in proof schema templates.
//
//go:embed assets/*.json assets/*.yaml
var Templates embed.FS

const (
	// LoginTemplate is the built-in template for logging in with a credential issued by this application.
	LoginTemplate = "assets/login.json"
	// SignupTemplate is the built-in template for signing up with self-attested attributes.
	SignupTemplate = "assets/signup.json"
	// AccountSignupTemplate is the built-in template for opening an account with a driver's license and employment credential.
	AccountSignupTemplate = "assets/signup-account.yaml"
)

const templateSchemaURL = "https://nuts.nl/schemas/demo/proof-schema-template.json"

var templateSchema *jsonschema.Schema

func init() {
	data, err := Templates.ReadFile("assets/proof-schema-template.json")
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(templateSchemaURL, bytes.NewReader(data)); err != nil {
		panic(fmt.Errorf("error compiling proof schema template schema: %w", err))
	}
	templateSchema = compiler.MustCompile(templateSchemaURL)
}

// ParseTemplate validates a proof schema template and parses it. YAML templates are converted to JSON first.
func ParseTemplate(name string, data []byte) (*agent.ProofSchema, error) {
	ext := strings.ToLower(path.Ext(name))
	if ext == ".yaml" || ext == ".yml" {
		var document interface{}
		if err := yaml.Unmarshal(data, &document); err != nil {
			return nil, fmt.Errorf("invalid proof schema template (name=%s): %w", name, err)
		}
		var err error
		if data, err = json.Marshal(document); err != nil {
			return nil, fmt.Errorf("invalid proof schema template (name=%s): %w", name, err)
		}
	}
	if err := templateSchema.Validate(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("invalid proof schema template (name=%s): %w", name, err)
	}
	var result agent.ProofSchema
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("invalid proof schema template (name=%s): %w", name, err)
	}
	return &result, nil
}

func loadTemplate(fsys fs.FS, name string) (*agent.ProofSchema, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("unable to read proof schema template: %w", err)
	}
	return ParseTemplate(name, data)
}

// copySchema deep copies the requested attributes and predicates, so callers can modify the result.
// Nil restrictions stay nil, since that marks an attribute as self-attested.
func copySchema(schema agent.ProofSchema) agent.ProofSchema {
	result := schema
	result.RequestedAttributes = make(map[string]agent.RequestedAttribute, len(schema.RequestedAttributes))
	for key, attribute := range schema.RequestedAttributes {
		attribute.Restrictions = copyRestrictions(attribute.Restrictions)
		result.RequestedAttributes[key] = attribute
	}
	if schema.RequestedPredicates != nil {
		result.RequestedPredicates = make(map[string]agent.RequestedPredicate, len(schema.RequestedPredicates))
		for key, predicate := range schema.RequestedPredicates {
			predicate.Restrictions = copyRestrictions(predicate.Restrictions)
			result.RequestedPredicates[key] = predicate
		}
	}
	return result
}

func copyRestrictions(restrictions []agent.Restriction) []agent.Restriction {
	if restrictions == nil {
		return nil
	}
	return append(make([]agent.Restriction, 0, len(restrictions)), restrictions...)
}
