package util

const DateFormat = "2006-01-02"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 头像允许的扩展名
var AllowedPhotoExtensions = []string{"png", "jpg", "jpeg", "gif"}
