package artifactRepository

import (
	"ChatbotGolang/internal/entity"
	contextPkg "ChatbotGolang/pkg/context"
	"context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *artifactsRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, queryCreateArtifactsTable); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create model_artifacts table")
		return err
	}
	return nil
}

func (r *artifactsRepository) UpsertArtifact(ctx context.Context, artifact entity.ModelArtifact) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"name":       artifact.Name,
		"data":       artifact.Data,
		"updated_at": artifact.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpsertArtifact, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpsertArtifact")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"artifact":   artifact.Name,
			"error":      err.Error(),
		}).Error("Database error when upserting artifact")
		return err
	}

	return nil
}

func (r *artifactsRepository) GetArtifactsByNames(ctx context.Context, names []string) ([]entity.ModelArtifact, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var artifacts []entity.ModelArtifact

	query, args, err := sqlx.In(queryGetArtifactsByNames, names)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtifactsByNames query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &artifacts, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtifactsByNames execution err")
		return nil, err
	}

	return artifacts, nil
}
