package clickup_tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/teemow/clickup-mcp/internal/catalog"
)

// category groups tools by the first segment of their primary endpoint.
func category(desc catalog.Descriptor) string {
	if len(desc.Endpoints) == 0 {
		return "Other"
	}
	segment, _, _ := strings.Cut(strings.TrimPrefix(desc.Endpoints[0], "/"), "/")
	switch segment {
	case "user":
		return "User"
	case "team":
		return "Workspaces"
	case "space":
		return "Spaces"
	case "list":
		return "Lists"
	default:
		return "Other"
	}
}

// GenerateMarkdown renders a reference of every tool in c: description,
// arguments and the ClickUp endpoints it reads.
func GenerateMarkdown(c *catalog.Catalog) string {
	var sb strings.Builder

	sb.WriteString("# MCP Tools Reference\n\n")
	sb.WriteString("This document lists every tool available when running clickup-mcp as an MCP server.\n\n")
	sb.WriteString("**Note:** This documentation is automatically generated from the tool definitions.\n\n")
	sb.WriteString("All tools are read-only and need a ClickUp personal API token in `CLICKUP_API_KEY`.\n\n")

	byCategory := make(map[string][]catalog.Descriptor)
	for _, desc := range c.Descriptors() {
		cat := category(desc)
		byCategory[cat] = append(byCategory[cat], desc)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	sb.WriteString("## Table of Contents\n\n")
	for _, cat := range categories {
		anchor := strings.ToLower(strings.ReplaceAll(cat, " ", "-"))
		fmt.Fprintf(&sb, "- [%s](#%s)\n", cat, anchor)
	}
	sb.WriteString("\n")

	for _, cat := range categories {
		fmt.Fprintf(&sb, "## %s\n\n", cat)
		for _, desc := range byCategory[cat] {
			sb.WriteString(toolMarkdown(desc))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func toolMarkdown(desc catalog.Descriptor) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "### %s\n\n", desc.Name)
	if desc.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", desc.Description)
	}

	if len(desc.Params) > 0 {
		sb.WriteString("**Arguments:**\n")
		for _, p := range desc.Params {
			requiredStr := "optional"
			if p.Required {
				requiredStr = "required"
			}
			fmt.Fprintf(&sb, "- `%s` (%s, %s): %s", p.Name, p.Type, requiredStr, p.Description)
			if p.Default != nil {
				fmt.Fprintf(&sb, " Default: `%v`.", p.Default)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(desc.Endpoints) > 0 {
		sb.WriteString("**Endpoints:** ")
		for i, e := range desc.Endpoints {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "`GET %s`", e)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
