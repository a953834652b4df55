package models

import "time"

// StatusUploaded marks a metadata record whose file reached object storage.
const StatusUploaded = "UPLOADED"

// Submission is one uploaded document. It lives only for the duration of a request.
type Submission struct {
	Filename string
	Content  []byte
	Language string
}

// MetadataRecord describes a stored upload. It is created once per successful
// upload and written once to each metadata sink.
type MetadataRecord struct {
	DocumentID      string    `json:"document_id" bigquery:"document_id" firestore:"documentId"`
	Filename        string    `json:"filename" bigquery:"filename" firestore:"filename"`
	FileType        string    `json:"file_type" bigquery:"file_type" firestore:"fileType"`
	FileSize        int64     `json:"file_size" bigquery:"file_size" firestore:"fileSize"`
	UploadTimestamp time.Time `json:"upload_timestamp" bigquery:"upload_timestamp" firestore:"uploadTimestamp"`
	Status          string    `json:"status" bigquery:"status" firestore:"status"`
	StoragePath     string    `json:"storage_path" bigquery:"storage_path" firestore:"storagePath"`
	// FileHash is kept in the Firestore registry only; the warehouse table has no such column.
	FileHash string `json:"-" bigquery:"-" firestore:"fileHash,omitempty"`
}

// ChatPart is one piece of a chat turn. Only text parts are supported.
type ChatPart struct {
	Text string `json:"text"`
}

// ChatTurn is one message of a caller-supplied conversation.
type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// FirstText returns the text of the first part, or "" when there is none.
func (t ChatTurn) FirstText() string {
	if len(t.Parts) == 0 {
		return ""
	}
	return t.Parts[0].Text
}
