package model

// File is a stored blob. Content is kept in the row unless the file was uploaded to
// cloud storage, in which case StorageObjectName points at the object.
type File struct {
	ID                uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Content           []byte  `gorm:"type:bytea" json:"-"`
	Extension         string  `gorm:"type:text" json:"extension"`
	StorageObjectName *string `gorm:"type:text" json:"-"`
}
