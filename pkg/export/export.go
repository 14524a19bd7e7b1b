// Package export dumps curated knowledge base rows back out to
// versioned JSON fixture files so the database can be rebuilt from
// source control.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/pkg/schema"
)

// Exporter writes fixture files into a target directory.
type Exporter struct {
	conn        *db.DatabaseConnection
	dir         string
	elementsDir string
}

// NewExporter creates an exporter writing into dir.
func NewExporter(conn *db.DatabaseConnection, dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create fixtures directory: %w", err)
	}
	return &Exporter{conn: conn, dir: dir}, nil
}

// WithElementsDir points the exporter at the element descriptor
// directory so descriptor-derived fixtures can be produced.
func (e *Exporter) WithElementsDir(dir string) *Exporter {
	e.elementsDir = dir
	return e
}

func (e *Exporter) writeFixture(filename string, fixture any) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	data = append(data, '\n')
	path := filepath.Join(e.dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

type ruleEnrichment struct {
	RuleID        string `json:"rule_id"`
	Rationale     string `json:"rationale"`
	FixSuggestion string `json:"fix_suggestion"`
	AutoFixable   bool   `json:"auto_fixable"`
}

type ruleEnrichmentsFixture struct {
	Source      string           `json:"_source"`
	Description string           `json:"_description"`
	Enrichments []ruleEnrichment `json:"rule_enrichments"`
}

// ExportRuleEnrichments writes rule-enrichments.json with every rule
// that carries a curated rationale.
func (e *Exporter) ExportRuleEnrichments() (int, error) {
	rules, _, err := e.conn.ListRules(db.RuleFilter{})
	if err != nil {
		return 0, err
	}

	fixture := ruleEnrichmentsFixture{
		Source:      "Rule enrichments - rationale, fix suggestions, auto-fix flags",
		Description: "Curated content explaining why rules matter and how to fix violations",
		Enrichments: []ruleEnrichment{},
	}
	for _, rule := range rules {
		if rule.Rationale == "" {
			continue
		}
		fixture.Enrichments = append(fixture.Enrichments, ruleEnrichment{
			RuleID:        rule.RuleID,
			Rationale:     rule.Rationale,
			FixSuggestion: rule.FixSuggestion,
			AutoFixable:   rule.AutoFixable,
		})
	}

	if err := e.writeFixture("rule-enrichments.json", fixture); err != nil {
		return 0, err
	}
	log.Info().Int("rules", len(fixture.Enrichments)).Msg("Exported rule enrichments")
	return len(fixture.Enrichments), nil
}

type ruleConditionEntry struct {
	ConditionType string `json:"condition_type"`
	Target        string `json:"target"`
	Operator      string `json:"operator"`
	Value         string `json:"value,omitempty"`
}

type ruleConditions struct {
	RuleID     string               `json:"rule_id"`
	Conditions []ruleConditionEntry `json:"conditions"`
}

type ruleConditionsFixture struct {
	Source      string           `json:"_source"`
	Description string           `json:"_description"`
	Rules       []ruleConditions `json:"rule_conditions"`
}

// ExportRuleConditions writes rule-conditions.json grouped by rule.
func (e *Exporter) ExportRuleConditions() (int, error) {
	rules, _, err := e.conn.ListRules(db.RuleFilter{})
	if err != nil {
		return 0, err
	}

	fixture := ruleConditionsFixture{
		Source:      "Rule evaluation conditions for the WiX linter",
		Description: "Each rule has one or more conditions that define HOW the rule is evaluated",
		Rules:       []ruleConditions{},
	}
	for _, rule := range rules {
		if len(rule.Conditions) == 0 {
			continue
		}
		entry := ruleConditions{RuleID: rule.RuleID}
		for _, condition := range rule.Conditions {
			entry.Conditions = append(entry.Conditions, ruleConditionEntry{
				ConditionType: condition.ConditionType,
				Target:        condition.Target,
				Operator:      condition.Operator,
				Value:         condition.Value,
			})
		}
		fixture.Rules = append(fixture.Rules, entry)
	}

	if err := e.writeFixture("rule-conditions.json", fixture); err != nil {
		return 0, err
	}
	log.Info().Int("rules", len(fixture.Rules)).Msg("Exported rule conditions")
	return len(fixture.Rules), nil
}

type msiColumnEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Nullable    bool   `json:"nullable"`
	Key         bool   `json:"key"`
	Description string `json:"description"`
}

type msiTableEntry struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Columns     []msiColumnEntry `json:"columns"`
}

type msiTablesFixture struct {
	Source      string          `json:"_source"`
	Description string          `json:"_description"`
	Tables      []msiTableEntry `json:"msi_tables"`
}

// ExportMsiTables writes msi-table-definitions.json.
func (e *Exporter) ExportMsiTables() (int, error) {
	tables, _, err := e.conn.ListMsiTables(db.MsiTableFilter{})
	if err != nil {
		return 0, err
	}

	fixture := msiTablesFixture{
		Source:      "MSI table column definitions per Windows Installer SDK",
		Description: "Column layouts of the Windows Installer database tables",
		Tables:      []msiTableEntry{},
	}
	for _, table := range tables {
		entry := msiTableEntry{Name: table.Name, Description: table.Description}
		for _, column := range table.Columns {
			entry.Columns = append(entry.Columns, msiColumnEntry{
				Name:        column.Name,
				Type:        column.Type,
				Nullable:    column.Nullable,
				Key:         column.Key,
				Description: column.Description,
			})
		}
		fixture.Tables = append(fixture.Tables, entry)
	}

	if err := e.writeFixture("msi-table-definitions.json", fixture); err != nil {
		return 0, err
	}
	log.Info().Int("tables", len(fixture.Tables)).Msg("Exported MSI table definitions")
	return len(fixture.Tables), nil
}

type enumDescriptionEntry struct {
	Element     string `json:"element"`
	Attribute   string `json:"attribute"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type enumDescriptionsFixture struct {
	Source      string                 `json:"_source"`
	Description string                 `json:"_description"`
	Values      []enumDescriptionEntry `json:"enum_descriptions"`
}

// ExportEnumDescriptions writes attribute-enum-descriptions.json.
func (e *Exporter) ExportEnumDescriptions() (int, error) {
	values, _, err := e.conn.ListEnumDescriptions(db.EnumDescriptionFilter{})
	if err != nil {
		return 0, err
	}

	fixture := enumDescriptionsFixture{
		Source:      "Attribute enum value descriptions",
		Description: "Curated descriptions of individual enum values, keyed by element/attribute/value",
		Values:      []enumDescriptionEntry{},
	}
	for _, value := range values {
		fixture.Values = append(fixture.Values, enumDescriptionEntry{
			Element:     value.Element,
			Attribute:   value.Attribute,
			Value:       value.Value,
			Description: value.Description,
		})
	}

	if err := e.writeFixture("attribute-enum-descriptions.json", fixture); err != nil {
		return 0, err
	}
	log.Info().Int("values", len(fixture.Values)).Msg("Exported enum descriptions")
	return len(fixture.Values), nil
}

type standardDirectoryEntry struct {
	DirectoryID string `json:"directory_id"`
	Name        string `json:"name"`
	Scope       string `json:"scope"`
	ExamplePath string `json:"example_path"`
	Description string `json:"description"`
}

type standardDirectoriesFixture struct {
	Source      string                   `json:"_source"`
	Description string                   `json:"_description"`
	Directories []standardDirectoryEntry `json:"standard_directories"`
}

// ExportStandardDirectories writes standard-directories.json.
func (e *Exporter) ExportStandardDirectories() (int, error) {
	dirs, _, err := e.conn.ListStandardDirectories(db.StandardDirectoryFilter{})
	if err != nil {
		return 0, err
	}

	fixture := standardDirectoriesFixture{
		Source:      "Windows Installer standard directory reference",
		Description: "Standard directory properties with scope and example paths",
		Directories: []standardDirectoryEntry{},
	}
	for _, dir := range dirs {
		fixture.Directories = append(fixture.Directories, standardDirectoryEntry{
			DirectoryID: dir.DirectoryID,
			Name:        dir.Name,
			Scope:       dir.Scope,
			ExamplePath: dir.ExamplePath,
			Description: dir.Description,
		})
	}

	if err := e.writeFixture("standard-directories.json", fixture); err != nil {
		return 0, err
	}
	log.Info().Int("directories", len(fixture.Directories)).Msg("Exported standard directories")
	return len(fixture.Directories), nil
}

type dataSourceEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type dataSourcesFixture struct {
	Source      string            `json:"_source"`
	Description string            `json:"_description"`
	Sources     []dataSourceEntry `json:"data_sources"`
}

// ExportDataSources writes data-sources.json.
func (e *Exporter) ExportDataSources() (int, error) {
	sources, _, err := e.conn.ListDataSources(db.DataSourceFilter{})
	if err != nil {
		return 0, err
	}

	fixture := dataSourcesFixture{
		Source:      "Data provenance",
		Description: "External sources the knowledge base content was derived from",
		Sources:     []dataSourceEntry{},
	}
	for _, source := range sources {
		fixture.Sources = append(fixture.Sources, dataSourceEntry{
			Name: source.Name,
			URL:  source.URL,
			Kind: source.Kind,
		})
	}

	if err := e.writeFixture("data-sources.json", fixture); err != nil {
		return 0, err
	}
	log.Info().Int("sources", len(fixture.Sources)).Msg("Exported data sources")
	return len(fixture.Sources), nil
}

type cliCommandEntry struct {
	Command     string   `json:"command"`
	Syntax      string   `json:"syntax"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

type cliCommandsFixture struct {
	Source      string            `json:"_source"`
	Description string            `json:"_description"`
	Commands    []cliCommandEntry `json:"cli_commands"`
}

// ExportCliCommands writes cli-commands.json.
func (e *Exporter) ExportCliCommands() (int, error) {
	commands, _, err := e.conn.ListCliCommands()
	if err != nil {
		return 0, err
	}

	fixture := cliCommandsFixture{
		Source:      "wix.exe CLI command syntax reference",
		Description: "Documented commands with syntax and usage examples",
		Commands:    []cliCommandEntry{},
	}
	for _, command := range commands {
		fixture.Commands = append(fixture.Commands, cliCommandEntry{
			Command:     command.Command,
			Syntax:      command.Syntax,
			Description: command.Description,
			Examples:    command.Examples,
		})
	}

	if err := e.writeFixture("cli-commands.json", fixture); err != nil {
		return 0, err
	}
	log.Info().Int("commands", len(fixture.Commands)).Msg("Exported CLI commands")
	return len(fixture.Commands), nil
}

type elementParentsEntry struct {
	Element string   `json:"element"`
	Parents []string `json:"parents"`
}

type elementParentsFixture struct {
	Source      string                `json:"_source"`
	Description string                `json:"_description"`
	Parents     []elementParentsEntry `json:"element_parents"`
}

// ExportElementParents writes element-parents.json derived from the
// element descriptor files. Elements with no known parents are
// omitted.
func (e *Exporter) ExportElementParents() (int, error) {
	if e.elementsDir == "" {
		return 0, fmt.Errorf("no elements directory configured")
	}
	store, err := schema.NewDescriptorStore(e.elementsDir)
	if err != nil {
		return 0, err
	}
	names, err := store.List()
	if err != nil {
		return 0, err
	}

	fixture := elementParentsFixture{
		Source:      "Element parent relationships",
		Description: "Valid parent elements for each WiX element",
		Parents:     []elementParentsEntry{},
	}
	for _, name := range names {
		element, ok := store.LoadExisting(name)
		if !ok || len(element.Parents) == 0 {
			continue
		}
		parents := append([]string(nil), element.Parents...)
		sort.Strings(parents)
		fixture.Parents = append(fixture.Parents, elementParentsEntry{
			Element: element.Name,
			Parents: parents,
		})
	}
	sort.Slice(fixture.Parents, func(i, j int) bool {
		return fixture.Parents[i].Element < fixture.Parents[j].Element
	})

	if err := e.writeFixture("element-parents.json", fixture); err != nil {
		return 0, err
	}
	log.Info().Int("elements", len(fixture.Parents)).Msg("Exported element parents")
	return len(fixture.Parents), nil
}

// ExportAll runs every exporter and returns the total row count.
// Element parent export requires an elements directory and is skipped
// when none was configured.
func (e *Exporter) ExportAll() (int, error) {
	total := 0
	steps := []func() (int, error){
		e.ExportRuleEnrichments,
		e.ExportRuleConditions,
		e.ExportMsiTables,
		e.ExportEnumDescriptions,
		e.ExportStandardDirectories,
		e.ExportDataSources,
		e.ExportCliCommands,
	}
	if e.elementsDir != "" {
		steps = append(steps, e.ExportElementParents)
	}
	for _, step := range steps {
		count, err := step()
		if err != nil {
			return total, err
		}
		total += count
	}
	return total, nil
}
