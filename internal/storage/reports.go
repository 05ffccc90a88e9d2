package storage

import (
	"encoding/json"
	"sort"

	"github.com/hakim/nmaptable/internal/models"
	"go.etcd.io/bbolt"
)

// SaveReport persists a report record to the database
func (s *Store) SaveReport(meta *models.ReportMeta) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}

		reports := tx.Bucket([]byte(bucketReports))
		if err := reports.Put([]byte(meta.ID), data); err != nil {
			return err
		}

		// Update report index (source -> []report_id mapping)
		index := tx.Bucket([]byte(bucketReportIndex))
		sourceKey := []byte(meta.Source)

		var reportIDs []string
		if existing := index.Get(sourceKey); existing != nil {
			if err := json.Unmarshal(existing, &reportIDs); err != nil {
				return err
			}
		}

		found := false
		for _, id := range reportIDs {
			if id == meta.ID {
				found = true
				break
			}
		}
		if !found {
			reportIDs = append(reportIDs, meta.ID)
		}

		indexData, err := json.Marshal(reportIDs)
		if err != nil {
			return err
		}
		return index.Put(sourceKey, indexData)
	})
}

// GetReport retrieves a report record by ID. It returns nil when not found.
func (s *Store) GetReport(id string) (*models.ReportMeta, error) {
	var meta *models.ReportMeta

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketReports)).Get([]byte(id))
		if data == nil {
			return nil
		}

		meta = &models.ReportMeta{}
		return json.Unmarshal(data, meta)
	})

	return meta, err
}

// ListReports retrieves report records for a source, or all records when
// source is empty, sorted by GeneratedAt descending
func (s *Store) ListReports(source string) ([]*models.ReportMeta, error) {
	var reports []*models.ReportMeta

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReports))

		if source == "" {
			return bucket.ForEach(func(_, data []byte) error {
				var meta models.ReportMeta
				if err := json.Unmarshal(data, &meta); err != nil {
					return err
				}
				reports = append(reports, &meta)
				return nil
			})
		}

		data := tx.Bucket([]byte(bucketReportIndex)).Get([]byte(source))
		if data == nil {
			return nil
		}

		var reportIDs []string
		if err := json.Unmarshal(data, &reportIDs); err != nil {
			return err
		}

		for _, id := range reportIDs {
			reportData := bucket.Get([]byte(id))
			if reportData == nil {
				continue
			}
			var meta models.ReportMeta
			if err := json.Unmarshal(reportData, &meta); err != nil {
				return err
			}
			reports = append(reports, &meta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].GeneratedAt.After(reports[j].GeneratedAt)
	})

	return reports, nil
}
