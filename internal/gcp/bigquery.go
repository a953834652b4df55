package gcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

// BigQuerySink streams metadata records into a warehouse table.
type BigQuerySink struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	tableID  string
}

func NewBigQuerySink(ctx context.Context, credentialsJSON []byte, projectID, dataset, table string) (*BigQuerySink, error) {
	if projectID == "" || dataset == "" || table == "" {
		return nil, fmt.Errorf("NewBigQuerySink: projectID, dataset and table cannot be empty")
	}
	client, err := bigquery.NewClient(ctx, projectID, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}
	return &BigQuerySink{
		client:   client,
		inserter: client.Dataset(dataset).Table(table).Inserter(),
		tableID:  projectID + "." + dataset + "." + table,
	}, nil
}

func (b *BigQuerySink) Name() string {
	return "bigquery"
}

// Record inserts one row. Row-level insert errors are reported as a single error.
func (b *BigQuerySink) Record(ctx context.Context, rec models.MetadataRecord) error {
	if err := b.inserter.Put(ctx, &rec); err != nil {
		var multi bigquery.PutMultiError
		if errors.As(err, &multi) {
			return fmt.Errorf("insert into %s rejected: %s", b.tableID, rowErrors(multi))
		}
		return fmt.Errorf("insert into %s: %w", b.tableID, err)
	}
	return nil
}

func (b *BigQuerySink) Close() error {
	return b.client.Close()
}

func rowErrors(multi bigquery.PutMultiError) string {
	msgs := make([]string, 0, len(multi))
	for _, rowErr := range multi {
		msgs = append(msgs, rowErr.Error())
	}
	return strings.Join(msgs, "; ")
}
