// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/sermonsearch/core"
)

// SnapshotMeta describes a stored catalog snapshot.
type SnapshotMeta struct {
	TakenAt time.Time
	Count   int
}

// MarshalCatalogRecord serializes a CatalogRecord to bytes.
// A record's date is stored as (present, unix-micro) so the zero
// "unknown date" round-trips exactly.
func MarshalCatalogRecord(record *core.CatalogRecord) []byte {
	hasDate := record.HasDate()
	size := varint.Uint64.Size(uint64(record.Id)) +
		ord.String.Size(record.Title) +
		ord.String.Size(record.Speaker) +
		ord.String.Size(record.DownloadLink) +
		ord.Bool.Size(hasDate)
	if hasDate {
		size += varint.Int64.Size(record.Date.UnixMicro())
	}

	buf := make([]byte, size)
	n := varint.Uint64.Marshal(uint64(record.Id), buf)
	n += ord.String.Marshal(record.Title, buf[n:])
	n += ord.String.Marshal(record.Speaker, buf[n:])
	n += ord.String.Marshal(record.DownloadLink, buf[n:])
	n += ord.Bool.Marshal(hasDate, buf[n:])
	if hasDate {
		varint.Int64.Marshal(record.Date.UnixMicro(), buf[n:])
	}
	return buf
}

// UnmarshalCatalogRecord deserializes a CatalogRecord from bytes.
func UnmarshalCatalogRecord(data []byte) (*core.CatalogRecord, error) {
	record := &core.CatalogRecord{}

	id, n, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	record.Id = core.ID(id)

	title, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	record.Title = title

	speaker, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	record.Speaker = speaker

	link, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	record.DownloadLink = link

	hasDate, m, err := ord.Bool.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	if hasDate {
		micros, _, err := varint.Int64.Unmarshal(data[n:])
		if err != nil {
			return nil, err
		}
		record.Date = time.UnixMicro(micros).UTC()
	}
	return record, nil
}

// MarshalSnapshotMeta serializes snapshot metadata to bytes.
func MarshalSnapshotMeta(meta *SnapshotMeta) []byte {
	size := varint.Int64.Size(meta.TakenAt.UnixMicro()) +
		varint.Int64.Size(int64(meta.Count))
	buf := make([]byte, size)
	n := varint.Int64.Marshal(meta.TakenAt.UnixMicro(), buf)
	varint.Int64.Marshal(int64(meta.Count), buf[n:])
	return buf
}

// UnmarshalSnapshotMeta deserializes snapshot metadata from bytes.
func UnmarshalSnapshotMeta(data []byte) (*SnapshotMeta, error) {
	micros, n, err := varint.Int64.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	count, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	return &SnapshotMeta{
		TakenAt: time.UnixMicro(micros).UTC(),
		Count:   int(count),
	}, nil
}
