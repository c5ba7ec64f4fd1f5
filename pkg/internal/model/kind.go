package model

// Kind 枚举资源种类，携带其关联集合（表名）与媒体库中的存储前缀.
// 新增种类只需要追加一个枚举值，不需要修改任何分支逻辑.
type Kind struct {
	name       string
	collection string
	storeType  string
}

var (
	// KindAudio 音频片段；历史原因集合名为 "users"，保持线上兼容.
	KindAudio = Kind{name: "audio", collection: "users", storeType: "video"}
	// KindImage 乐谱图片.
	KindImage = Kind{name: "image", collection: "sheets", storeType: "image"}
)

// Kinds 返回全部已知资源种类.
func Kinds() []Kind {
	return []Kind{KindAudio, KindImage}
}

// KindFromCollection 根据集合名解析资源种类.
// 未知集合名一律按图片处理，与历史行为一致.
func KindFromCollection(collection string) Kind {
	for _, k := range Kinds() {
		if k.collection == collection {
			return k
		}
	}

	return KindImage
}

// KindFromStoreType 根据媒体库资源类型（video/image）解析资源种类.
func KindFromStoreType(storeType string) Kind {
	for _, k := range Kinds() {
		if k.storeType == storeType {
			return k
		}
	}

	return KindImage
}

// String 资源种类名称.
func (k Kind) String() string { return k.name }

// Collection 关联库中的集合（表）名.
func (k Kind) Collection() string { return k.collection }

// StoreType 媒体库的资源类型，同时作为对象键前缀.
func (k Kind) StoreType() string { return k.storeType }
