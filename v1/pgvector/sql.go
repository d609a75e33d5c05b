package pgvector

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// distanceOperator returns the pgvector operator for m. All three return a
// distance: cosine distance, L2 distance and negative inner product.
func distanceOperator(m vectordb.Metric) (string, error) {
	switch m {
	case vectordb.MetricCosine:
		return "<=>", nil
	case vectordb.MetricEuclidean:
		return "<->", nil
	case vectordb.MetricDotProduct:
		return "<#>", nil
	default:
		return "", fmt.Errorf("%w: unsupported metric %q", vectordb.ErrInvalidIndexSpec, m)
	}
}

func operatorClass(m vectordb.Metric) string {
	switch m {
	case vectordb.MetricEuclidean:
		return "vector_l2_ops"
	case vectordb.MetricDotProduct:
		return "vector_ip_ops"
	default:
		return "vector_cosine_ops"
	}
}

func tableIdent(prefix, name string) string {
	return pgx.Identifier{prefix + name}.Sanitize()
}

func createTableSQL(table string, dimension int) string {
	return fmt.Sprintf(`CREATE TABLE %s (
		namespace TEXT NOT NULL,
		id        TEXT NOT NULL,
		embedding vector(%d) NOT NULL,
		metadata  JSONB NOT NULL DEFAULT '{}'::jsonb,
		PRIMARY KEY (namespace, id)
	)`, table, dimension)
}

func createANNIndexSQL(prefix, name string, m vectordb.Metric) string {
	return fmt.Sprintf(`CREATE INDEX %s ON %s USING hnsw (embedding %s)`,
		pgx.Identifier{prefix + name + "_embedding_idx"}.Sanitize(),
		tableIdent(prefix, name),
		operatorClass(m))
}

func upsertSQL(table string) string {
	return fmt.Sprintf(`INSERT INTO %s (namespace, id, embedding, metadata)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (namespace, id) DO UPDATE
		SET embedding = EXCLUDED.embedding, metadata = EXCLUDED.metadata`, table)
}

func updateSQL(table string) string {
	return fmt.Sprintf(`UPDATE %s SET embedding = $3, metadata = $4
		WHERE namespace = $1 AND id = $2`, table)
}

func deleteSQL(table string) string {
	return fmt.Sprintf(`DELETE FROM %s WHERE namespace = $1 AND id = ANY($2)`, table)
}

func deleteAllSQL(table string) string {
	return fmt.Sprintf(`DELETE FROM %s WHERE namespace = $1`, table)
}

func querySQL(table, operator string) string {
	return fmt.Sprintf(`SELECT id, embedding::text, metadata, (embedding %s $2) AS score
		FROM %s
		WHERE namespace = $1
		ORDER BY score, id
		LIMIT $3`, operator, table)
}

func fetchSQL(table string) string {
	return fmt.Sprintf(`SELECT id, embedding::text, metadata
		FROM %s
		WHERE namespace = $1 AND id = ANY($2)`, table)
}
