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
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/proof/log"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

var _ SignupHelper = (*FileHelper)(nil)

// NewFileHelper creates a helper for the proof schema template at the given path on disk.
func NewFileHelper(templatePath string) *FileHelper {
	return NewTemplateHelper(os.DirFS(filepath.Dir(templatePath)), filepath.Base(templatePath))
}

// NewTemplateHelper creates a helper for the proof schema template with the given name in fsys.
// The template is read on first use and cached afterwards.
func NewTemplateHelper(fsys fs.FS, name string) *FileHelper {
	return &FileHelper{
		fsys: fsys,
		name: name,
		now:  time.Now,
	}
}

// FileHelper builds proof schemas from a static template and checks proofs against user records.
type FileHelper struct {
	fsys     fs.FS
	name     string
	now      func() time.Time
	mux      sync.Mutex
	template *agent.ProofSchema
}

func (h *FileHelper) getTemplate() (agent.ProofSchema, error) {
	h.mux.Lock()
	defer h.mux.Unlock()
	if h.template == nil {
		template, err := loadTemplate(h.fsys, h.name)
		if err != nil {
			return agent.ProofSchema{}, err
		}
		log.Logger().Debugf("Loaded proof schema template (name=%s, attributes=%d)", h.name, len(template.RequestedAttributes))
		h.template = template
	}
	return copySchema(*h.template), nil
}

// GetProofSchema returns a copy of the template with a unique version, so the agent accepts it as a new schema.
func (h *FileHelper) GetProofSchema(_ context.Context, restrictions []agent.Restriction) (*agent.ProofSchema, error) {
	schema, err := h.getTemplate()
	if err != nil {
		return nil, err
	}
	schema.Version = schema.Version + "." + strconv.FormatInt(h.now().UnixMilli(), 10)
	if restrictions != nil {
		for key, attribute := range schema.RequestedAttributes {
			if attribute.Restrictions != nil {
				attribute.Restrictions = copyRestrictions(restrictions)
				schema.RequestedAttributes[key] = attribute
			}
		}
	}
	return &schema, nil
}

// CheckProof requires every attribute of the template to be disclosed. Attributes with restrictions must be backed by
// a credential. When personalInfo is given, values must equal the user's record, ignoring case and whitespace.
func (h *FileHelper) CheckProof(_ context.Context, verification agent.Verification, personalInfo user.PersonalInfo) error {
	schema, err := h.getTemplate()
	if err != nil {
		return err
	}
	return checkAttributes(schema, verification, personalInfo)
}

// ProofToUserRecord copies all disclosed attributes to a new record, keyed by their normalized name.
func (h *FileHelper) ProofToUserRecord(_ context.Context, verification agent.Verification) (user.PersonalInfo, error) {
	if verification.Info == nil {
		return nil, errNoProof
	}
	result := user.PersonalInfo{}
	for _, attribute := range verification.Info.Attributes {
		name := user.NormalizeAttributeName(attribute.Name)
		if _, exists := result[name]; !exists {
			result[name] = attribute.Value
		}
	}
	return result, nil
}

func checkAttributes(schema agent.ProofSchema, verification agent.Verification, personalInfo user.PersonalInfo) error {
	if verification.Info == nil {
		return errNoProof
	}
	for key, requested := range schema.RequestedAttributes {
		name := user.NormalizeAttributeName(requested.Name)
		disclosed, ok := findAttribute(verification.Info.Attributes, key, name)
		if !ok {
			return fmt.Errorf("proof is missing attribute: %s", name)
		}
		if requested.Restrictions != nil && disclosed.CredDefID == "" {
			return fmt.Errorf("attribute is not backed by a credential: %s", name)
		}
		if personalInfo == nil {
			continue
		}
		expected, ok := personalInfo.Get(name)
		if !ok {
			return fmt.Errorf("user record has no value for attribute: %s", name)
		}
		if !valuesEqual(expected, disclosed.Value) {
			return fmt.Errorf("attribute does not match user record: %s", name)
		}
	}
	return nil
}

// findAttribute looks up the disclosed attribute for the requested attribute key, falling back to its normalized name.
func findAttribute(attributes []agent.ProofAttribute, key string, name string) (agent.ProofAttribute, bool) {
	for _, attribute := range attributes {
		if attribute.Key != "" && attribute.Key == key {
			return attribute, true
		}
	}
	for _, attribute := range attributes {
		if attribute.Key == "" && user.NormalizeAttributeName(attribute.Name) == name {
			return attribute, true
		}
	}
	return agent.ProofAttribute{}, false
}

func valuesEqual(a string, b string) bool {
	return stripSpaces(strings.ToLower(a)) == stripSpaces(strings.ToLower(b))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
