package workflow

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const indent = 2

// Render validates the document and serializes it. The header comes first,
// then the trigger block, then `jobs:` with one section per job separated by
// a blank line.
func Render(d *Document) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(d.Meta.Header())

	on, err := encode(mapping(pair("on", d.On.node())...))
	if err != nil {
		return nil, fmt.Errorf("failed to render trigger block: %w", err)
	}
	buf.Write(on)

	buf.WriteString("\njobs:\n")
	for i, job := range d.Jobs {
		if i > 0 {
			buf.WriteString("\n")
		}
		section, err := encode(mapping(pair(job.ID, job.node())...))
		if err != nil {
			return nil, fmt.Errorf("failed to render job %q: %w", job.ID, err)
		}
		buf.WriteString(indentLines(string(section), strings.Repeat(" ", indent)))
	}
	return buf.Bytes(), nil
}

// encode runs one node through a fresh encoder so that no document
// separators appear between sections.
func encode(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(n); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func indentLines(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line != "" && line != "\n" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}

func (t Trigger) node() *yaml.Node {
	push := mapping()
	if len(t.Branches) > 0 {
		push.Content = append(push.Content, pair("branches", sequence(t.Branches, 0))...)
	}
	if len(t.Tags) > 0 {
		push.Content = append(push.Content, pair("tags", sequence(t.Tags, yaml.SingleQuotedStyle))...)
	}

	on := mapping(pair("push", push)...)
	if t.PullRequest {
		on.Content = append(on.Content, pair("pull_request", scalar("", 0))...)
	}
	if t.WorkflowDispatch {
		on.Content = append(on.Content, pair("workflow_dispatch", scalar("", 0))...)
	}
	return on
}

func (j Job) node() *yaml.Node {
	n := mapping()
	add := func(key string, value *yaml.Node) {
		n.Content = append(n.Content, pair(key, value)...)
	}

	if j.Name != "" {
		add("name", scalar(j.Name, 0))
	}
	add("runs-on", scalar(j.RunsOn, 0))
	if j.If != "" {
		add("if", scalar(j.If, yaml.DoubleQuotedStyle))
	}
	if j.Needs != nil {
		needs := sequence(j.Needs, 0)
		needs.Style = yaml.FlowStyle
		add("needs", needs)
	}
	if len(j.Matrix) > 0 {
		target := sequence(j.Matrix, 0)
		target.Style = yaml.FlowStyle
		add("strategy", mapping(pair("matrix", mapping(pair("target", target)...))...))
	}

	steps := &yaml.Node{Kind: yaml.SequenceNode}
	for _, s := range j.Steps {
		steps.Content = append(steps.Content, s.node())
	}
	add("steps", steps)
	return n
}

func (s Step) node() *yaml.Node {
	n := mapping()
	add := func(key, value string) {
		if value != "" {
			n.Content = append(n.Content, pair(key, scalar(value, 0))...)
		}
	}

	add("name", s.Name)
	add("if", s.If)
	add("uses", s.Uses)
	add("shell", s.Shell)
	add("run", s.Run)
	if len(s.Env) > 0 {
		n.Content = append(n.Content, pair("env", params(s.Env))...)
	}
	if len(s.With) > 0 {
		n.Content = append(n.Content, pair("with", params(s.With))...)
	}
	return n
}

func params(ps []Param) *yaml.Node {
	n := mapping()
	for _, p := range ps {
		var style yaml.Style
		if p.Style == SingleQuoted {
			style = yaml.SingleQuotedStyle
		}
		n.Content = append(n.Content, pair(p.Key, scalar(p.Value, style))...)
	}
	return n
}

// scalar leaves the tag empty so the encoder never adds quotes on its own;
// every quoting decision is made by the caller through style.
func scalar(value string, style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: style}
}

func sequence(values []string, style yaml.Style) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{}}
	for _, v := range values {
		n.Content = append(n.Content, scalar(v, style))
	}
	return n
}

func pair(key string, value *yaml.Node) []*yaml.Node {
	return []*yaml.Node{scalar(key, 0), value}
}

func mapping(pairs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: pairs}
}
