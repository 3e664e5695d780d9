package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Add indexes to the responses table (report window scans)
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_responses_created_at ON responses (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_responses_survey_created ON responses (survey_id, created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_responses_interview_uuid ON responses (interview_uuid)").Error; err != nil {
		return err
	}

	// Add indexes to the answers table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers (question_id)").Error; err != nil {
		return err
	}

	// Add indexes to the questions table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questions_is_key ON questions (survey_id, is_key)").Error; err != nil {
		return err
	}

	// Add indexes to the report_checklists join table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_report_checklists_survey ON report_checklists (survey_id)").Error; err != nil {
		return err
	}

	return nil
}
