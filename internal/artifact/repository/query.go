package artifactRepository

const (
	queryCreateArtifactsTable = `
		CREATE TABLE IF NOT EXISTS model_artifacts (
			name       TEXT PRIMARY KEY,
			data       BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`

	queryUpsertArtifact = `
		INSERT INTO model_artifacts (
			name,
			data,
			updated_at
		) VALUES (
			:name,
			:data,
			:updated_at
		)
		ON CONFLICT (name) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`

	queryGetArtifactsByNames = `
		SELECT
			name,
			data,
			updated_at
		FROM model_artifacts
		WHERE name IN (?)
	`
)
