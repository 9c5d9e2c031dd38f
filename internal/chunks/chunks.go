// Package chunks finds shader chunk files and extracts their signatures.
package chunks

import (
	"time"

	"github.com/gogpu/shadersig/glsl"
)

// Chunk is one shader source file and the signatures found in it.
type Chunk struct {
	Path    string    `json:"path" yaml:"path"`
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`

	// Definition is nil when the chunk has no parsable definition; Err then
	// holds the reason.
	Definition *glsl.Signature  `json:"definition,omitempty" yaml:"definition,omitempty"`
	Prototypes []glsl.Signature `json:"prototypes" yaml:"prototypes"`
	Err        string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Extract builds a Chunk from source. A chunk without a definition is still
// returned; only its prototypes are known.
func Extract(path, source string) Chunk {
	chunk := Chunk{
		Path:       path,
		Prototypes: glsl.FindPrototypes(source),
	}

	sig, err := glsl.ParseFunctionSignature(source)
	if err != nil {
		chunk.Err = err.Error()
		return chunk
	}

	chunk.Definition = &sig
	return chunk
}

// Link connects a prototype declared in one chunk to the chunks whose
// definition satisfies it.
type Link struct {
	From      string         `json:"from" yaml:"from"`
	Prototype glsl.Signature `json:"prototype" yaml:"prototype"`
	// Providers is empty when no chunk defines a matching function.
	Providers []string `json:"providers" yaml:"providers"`
}

// Resolved reports whether at least one chunk provides the prototype.
func (l Link) Resolved() bool {
	return len(l.Providers) > 0
}

// Resolve links every prototype of every chunk to the chunks defining a
// matching function. Links follow chunk order, then prototype order.
func Resolve(chunks []Chunk) []Link {
	byName := make(map[string][]Chunk)
	for _, c := range chunks {
		if c.Definition != nil {
			byName[c.Definition.Name] = append(byName[c.Definition.Name], c)
		}
	}

	var links []Link
	for _, c := range chunks {
		for _, proto := range c.Prototypes {
			link := Link{From: c.Path, Prototype: proto, Providers: []string{}}
			for _, provider := range byName[proto.Name] {
				if proto.Matches(*provider.Definition) {
					link.Providers = append(link.Providers, provider.Path)
				}
			}
			links = append(links, link)
		}
	}
	return links
}
