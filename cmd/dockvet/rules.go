package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/profile"
	"github.com/dockvet/dockvet/internal/rules"
)

func rulesCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "rules [rule]",
		Short: "List rules or explain a specific rule",
		Long:  "List the rule catalogue of each profile, or show details for one rule given its ID.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := selectProfiles(profileName)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				id := strings.ToUpper(args[0])
				for _, p := range profiles {
					if r, ok := p.Catalogue.Get(id); ok {
						explainRule(p, r)
						return nil
					}
				}
				return fmt.Errorf("rule %q not found", args[0])
			}

			for _, p := range profiles {
				listCatalogue(p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "Limit to one profile: best-practices|security")

	return cmd
}

func selectProfiles(name string) ([]*profile.Profile, error) {
	if name == "" {
		var out []*profile.Profile
		for _, n := range profile.Names() {
			p, _ := profile.ByName(n)
			out = append(out, p)
		}
		return out, nil
	}
	p, ok := profile.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (available: %s)", name, strings.Join(profile.Names(), ", "))
	}
	return []*profile.Profile{p}, nil
}

func listCatalogue(p *profile.Profile) {
	fmt.Printf("Profile: %s (%d rules)\n\n", p.Name, p.Catalogue.Len())

	byCategory := map[finding.Category][]rules.Rule{}
	for _, r := range p.Catalogue.Rules() {
		byCategory[r.Category()] = append(byCategory[r.Category()], r)
	}

	for _, cat := range finding.Categories {
		catRules := byCategory[cat]
		if len(catRules) == 0 {
			continue
		}
		fmt.Printf("  %s\n", cat)
		for _, r := range catRules {
			fmt.Printf("    %s  %-24s %s\n", r.ID(), r.Name(), p.Label(r.Severity()))
		}
	}
	fmt.Println()
}

func explainRule(p *profile.Profile, r rules.Rule) {
	fmt.Fprintf(os.Stdout, "Rule: %s (%s)\n", r.ID(), r.Name())
	fmt.Fprintf(os.Stdout, "Profile: %s\n", p.Name)
	fmt.Fprintf(os.Stdout, "Category: %s\n", r.Category())
	fmt.Fprintf(os.Stdout, "Severity: %s\n", p.Label(r.Severity()))
	fmt.Println()
	fmt.Println(r.Description())
}
