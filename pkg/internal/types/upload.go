package types

// UploadForm 上传请求的表单字段（文件本体单独经 multipart 提取）.
type UploadForm struct {
	Tags    string `form:"tags"`
	User    string `form:"user"`
	Project string `form:"project" rule:"required,max=255"`
}

// UploadAudioResponse 音频上传响应，保持历史 {success, message} 形状.
type UploadAudioResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadImageResponse 图片上传响应，历史契约会一并返回两侧存储的结果.
type UploadImageResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	StoreResult any    `json:"cloudinaryResult,omitempty"`
	DBResult    any    `json:"mongoResult,omitempty"`
}
