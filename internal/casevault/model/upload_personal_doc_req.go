package model

import "strings"

type UploadPersonalDocReq struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	FileType    string `json:"file_type" validate:"required"`
	FileSize    int64  `json:"file_size" validate:"omitempty,min=0"`
	ContentCid  string `json:"content_cid" validate:"required,min=10"`
	Encrypted   bool   `json:"encrypted"`
}

func (r *UploadPersonalDocReq) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.FileType = strings.TrimSpace(r.FileType)
	r.ContentCid = strings.TrimSpace(r.ContentCid)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
