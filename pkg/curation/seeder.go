package curation

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/wixkit/wixkit/db"
)

// Summary counts the outcome of one seeding pass.
type Summary struct {
	Created int
	Updated int
}

func (s Summary) Total() int {
	return s.Created + s.Updated
}

func (s Summary) String() string {
	return fmt.Sprintf("%d created, %d updated", s.Created, s.Updated)
}

// Seeder writes the embedded curation tables into the knowledge base.
// Every operation is an upsert keyed by the row's natural identifier,
// so seeding is idempotent.
type Seeder struct {
	conn *db.DatabaseConnection
}

// NewSeeder creates a seeder over the given connection.
func NewSeeder(conn *db.DatabaseConnection) *Seeder {
	return &Seeder{conn: conn}
}

// SeedRules upserts the rule catalog and each rule's evaluation
// conditions.
func (s *Seeder) SeedRules() (Summary, error) {
	var summary Summary
	for i := range Rules {
		rule := Rules[i]
		created, err := s.conn.SaveRule(&rule)
		if err != nil {
			return summary, fmt.Errorf("rule %s: %w", rule.RuleID, err)
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	log.Info().Int("created", summary.Created).Int("updated", summary.Updated).Msg("Seeded rules")
	return summary, nil
}

// SeedConditions replaces the stored evaluation conditions of every
// rule that has curated conditions. Rules missing from the store are
// skipped with a warning; seed rules first.
func (s *Seeder) SeedConditions() (Summary, error) {
	var summary Summary
	for ruleID, conditions := range RuleConditions {
		seeds := make([]db.RuleCondition, len(conditions))
		copy(seeds, conditions)
		if err := s.conn.ReplaceRuleConditions(ruleID, seeds); err != nil {
			log.Warn().Err(err).Str("rule", ruleID).Msg("Skipping conditions for unknown rule")
			continue
		}
		summary.Updated++
	}
	log.Info().Int("rules", summary.Updated).Msg("Seeded rule conditions")
	return summary, nil
}

// SeedMsiTables upserts the MSI table column layouts.
func (s *Seeder) SeedMsiTables() (Summary, error) {
	var summary Summary
	for i := range MsiTables {
		table := MsiTables[i]
		created, err := s.conn.SaveMsiTable(&table)
		if err != nil {
			return summary, fmt.Errorf("table %s: %w", table.Name, err)
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	log.Info().Int("created", summary.Created).Int("updated", summary.Updated).Msg("Seeded MSI tables")
	return summary, nil
}

// SeedEnumDescriptions upserts attribute enum value descriptions.
func (s *Seeder) SeedEnumDescriptions() (Summary, error) {
	var summary Summary
	for i := range EnumDescriptions {
		value := EnumDescriptions[i]
		created, err := s.conn.SaveEnumDescription(&value)
		if err != nil {
			return summary, fmt.Errorf("enum %s/@%s=%s: %w", value.Element, value.Attribute, value.Value, err)
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	log.Info().Int("created", summary.Created).Int("updated", summary.Updated).Msg("Seeded enum descriptions")
	return summary, nil
}

// SeedStandardDirectories upserts the standard directory reference.
func (s *Seeder) SeedStandardDirectories() (Summary, error) {
	var summary Summary
	for i := range StandardDirectories {
		dir := StandardDirectories[i]
		created, err := s.conn.SaveStandardDirectory(&dir)
		if err != nil {
			return summary, fmt.Errorf("directory %s: %w", dir.DirectoryID, err)
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	log.Info().Int("created", summary.Created).Int("updated", summary.Updated).Msg("Seeded standard directories")
	return summary, nil
}

// SeedDialogs upserts the stock dialog set with control layouts.
func (s *Seeder) SeedDialogs() (Summary, error) {
	var summary Summary
	for i := range Dialogs {
		dialog := Dialogs[i]
		created, err := s.conn.SaveDialog(&dialog)
		if err != nil {
			return summary, fmt.Errorf("dialog %s: %w", dialog.Name, err)
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	log.Info().Int("created", summary.Created).Int("updated", summary.Updated).Msg("Seeded dialogs")
	return summary, nil
}

// SeedCliCommands upserts the CLI command documentation.
func (s *Seeder) SeedCliCommands() (Summary, error) {
	var summary Summary
	for i := range CliCommands {
		command := CliCommands[i]
		created, err := s.conn.SaveCliCommand(&command)
		if err != nil {
			return summary, fmt.Errorf("command %s: %w", command.Command, err)
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	log.Info().Int("created", summary.Created).Int("updated", summary.Updated).Msg("Seeded CLI commands")
	return summary, nil
}

// SeedDataSources upserts the provenance rows.
func (s *Seeder) SeedDataSources() (Summary, error) {
	var summary Summary
	for i := range DataSources {
		source := DataSources[i]
		created, err := s.conn.SaveDataSource(&source)
		if err != nil {
			return summary, fmt.Errorf("source %s: %w", source.Name, err)
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	log.Info().Int("created", summary.Created).Int("updated", summary.Updated).Msg("Seeded data sources")
	return summary, nil
}

// SeedAll runs every seeder in dependency order.
func (s *Seeder) SeedAll() (Summary, error) {
	var total Summary
	steps := []func() (Summary, error){
		s.SeedRules,
		s.SeedConditions,
		s.SeedMsiTables,
		s.SeedEnumDescriptions,
		s.SeedStandardDirectories,
		s.SeedDialogs,
		s.SeedCliCommands,
		s.SeedDataSources,
	}
	for _, step := range steps {
		summary, err := step()
		if err != nil {
			return total, err
		}
		total.Created += summary.Created
		total.Updated += summary.Updated
	}
	return total, nil
}
