package formula

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// UpdateChecksum downloads the archive referenced by the manifest at p and
// writes its SHA-256 into the manifest's sha256 field. It returns the digest
// and whether the manifest changed.
func UpdateChecksum(ctx context.Context, p string, fe *Fetcher) (string, bool, error) {
	f, err := Load(p)
	if err != nil {
		return "", false, err
	}
	if err := f.Validate(); err != nil {
		return "", false, err
	}

	digest, err := fe.Digest(ctx, f.URL)
	if err != nil {
		return "", false, err
	}
	if strings.EqualFold(digest, f.SHA256) {
		return digest, false, nil
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return "", false, eris.Wrapf(err, "read formula %s", p)
	}
	out, err := setScalar(data, "sha256", digest)
	if err != nil {
		return "", false, eris.Wrapf(err, "update %s", p)
	}
	if err := writeAtomic(p, out); err != nil {
		return "", false, err
	}
	return digest, true, nil
}

// setScalar sets a top-level string field of a YAML document, keeping the
// rest of the document (including comments) intact.
func setScalar(data []byte, key, value string) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "parse manifest")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, eris.New("manifest is not a mapping")
	}
	m := doc.Content[0]

	found := false
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			v := m.Content[i+1]
			v.Kind, v.Tag, v.Value, v.Style = yaml.ScalarNode, "!!str", value, yaml.DoubleQuotedStyle
			v.LineComment = ""
			found = true
			break
		}
	}
	if !found {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, eris.Wrap(err, "encode manifest")
	}
	if err := enc.Close(); err != nil {
		return nil, eris.Wrap(err, "encode manifest")
	}
	return buf.Bytes(), nil
}

func writeAtomic(p string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(p), "."+filepath.Base(p)+".*")
	if err != nil {
		return eris.Wrapf(err, "write %s", p)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return eris.Wrapf(err, "write %s", p)
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrapf(err, "write %s", p)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return eris.Wrapf(err, "write %s", p)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return eris.Wrapf(err, "write %s", p)
	}
	return nil
}
