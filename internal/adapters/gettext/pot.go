package gettext

import (
	"bytes"
	"fmt"
	"strings"

	"go.trai.ch/wpbuild/internal/core/domain"
)

const creationDateLayout = "2006-01-02 15:04-0700"

// catalog collects messages in first seen order. Messages with the same
// context and id share one entry and merge their references.
type catalog struct {
	order []*message
	index map[string]*message
}

func newCatalog() *catalog {
	return &catalog{index: make(map[string]*message)}
}

func (c *catalog) add(m *message) {
	existing, ok := c.index[m.key()]
	if !ok {
		c.index[m.key()] = m
		c.order = append(c.order, m)
		return
	}
	existing.references = appendUnique(existing.references, m.references...)
	existing.comments = appendUnique(existing.comments, m.comments...)
	if existing.plural == "" {
		existing.plural = m.plural
	}
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, have := range list {
			if have == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}

// write renders the catalog as a translation template.
func (c *catalog) write(meta domain.CatalogMeta) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Copyright (C) %d %s\n", meta.CreatedAt.Year(), meta.Package)
	fmt.Fprintf(&buf, "# This file is distributed under the same license as the %s package.\n", meta.Package)
	buf.WriteString("msgid \"\"\n")
	buf.WriteString("msgstr \"\"\n")
	headers := []string{
		"Project-Id-Version: " + meta.Package,
		"Report-Msgid-Bugs-To: " + meta.BugReport,
		"Last-Translator: " + meta.LastTranslator,
		"Language-Team: " + meta.Team,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Transfer-Encoding: 8bit",
		"POT-Creation-Date: " + meta.CreatedAt.Format(creationDateLayout),
		"PO-Revision-Date: YEAR-MO-DA HO:MI+ZONE",
		"Plural-Forms: nplurals=INTEGER; plural=EXPRESSION;",
		"X-Domain: " + meta.Domain,
	}
	for _, h := range headers {
		fmt.Fprintf(&buf, "\"%s\\n\"\n", escape(h))
	}

	for _, m := range c.order {
		buf.WriteByte('\n')
		for _, comment := range m.comments {
			fmt.Fprintf(&buf, "#. %s\n", comment)
		}
		for _, ref := range m.references {
			fmt.Fprintf(&buf, "#: %s\n", ref)
		}
		if m.context != "" {
			writeField(&buf, "msgctxt", m.context)
		}
		writeField(&buf, "msgid", m.id)
		if m.plural != "" {
			writeField(&buf, "msgid_plural", m.plural)
			buf.WriteString("msgstr[0] \"\"\n")
			buf.WriteString("msgstr[1] \"\"\n")
			continue
		}
		buf.WriteString("msgstr \"\"\n")
	}
	return buf.Bytes()
}

// writeField writes a keyword and its quoted value. Values spanning
// several lines start with an empty string and put one line per row.
func writeField(buf *bytes.Buffer, keyword, value string) {
	if !strings.Contains(strings.TrimSuffix(value, "\n"), "\n") {
		fmt.Fprintf(buf, "%s \"%s\"\n", keyword, escape(value))
		return
	}
	fmt.Fprintf(buf, "%s \"\"\n", keyword)
	for line := range strings.SplitAfterSeq(value, "\n") {
		if line == "" {
			continue
		}
		fmt.Fprintf(buf, "\"%s\"\n", escape(line))
	}
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

func escape(s string) string {
	return escaper.Replace(s)
}
