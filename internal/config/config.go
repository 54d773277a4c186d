package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Rule binds a set of domains to a browser and an optional browser profile.
type Rule struct {
	Name           string   `json:"name"`
	Browser        Browser  `json:"browser,omitempty"`
	BrowserProfile string   `json:"browser_profile,omitempty"`
	Domains        []string `json:"domains"`
}

// Matches reports whether host is one of the rule's domains.
// Comparison is exact and case-sensitive.
func (r *Rule) Matches(host string) bool {
	return slices.Contains(r.Domains, host)
}

// RuleSet is the ordered list of rules from the config file.
type RuleSet []Rule

// Overlap describes a domain listed by more than one rule.
// Winner is the rule that takes effect, which is always the last one listed.
type Overlap struct {
	Domain string
	Rules  []string
	Winner string
}

// Overlaps returns every domain claimed by two or more rules, in first-seen order.
func (rs RuleSet) Overlaps() []Overlap {
	owners := make(map[string][]string)
	var order []string

	for _, rule := range rs {
		for _, domain := range rule.Domains {
			if _, seen := owners[domain]; !seen {
				order = append(order, domain)
			}
			owners[domain] = append(owners[domain], rule.Name)
		}
	}

	var overlaps []Overlap
	for _, domain := range order {
		names := owners[domain]
		if len(names) < 2 {
			continue
		}
		overlaps = append(overlaps, Overlap{
			Domain: domain,
			Rules:  names,
			Winner: names[len(names)-1],
		})
	}
	return overlaps
}

// Load reads and parses the rules file at path.
// Unlike most config files a missing rules file is an error: there is nothing to route with.
func Load(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a JSON (or JSON5) array of rules and normalises browser names.
func Parse(data []byte) (RuleSet, error) {
	var rules RuleSet
	if err := json5.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	for i := range rules {
		browser, err := ParseBrowser(string(rules[i].Browser))
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", ruleLabel(rules[i], i), err)
		}
		rules[i].Browser = browser
	}

	return rules, nil
}

func ruleLabel(r Rule, index int) string {
	if strings.TrimSpace(r.Name) != "" {
		return r.Name
	}
	return fmt.Sprintf("#%d", index)
}
