package common

// エラーメッセージの絵文字定数
const (
	ErrorIcon   = "❌"
	SuccessIcon = "✅"
	WarningIcon = "⚠️"
	SearchIcon  = "🔍"
	InfoIcon    = "📋"
	ProcessIcon = "🔄"
	FileIcon    = "📝"
)

// エラーメッセージフォーマット定数
const (
	// 一覧取得エラー
	ListErrorFormat = "%s %s一覧の取得に失敗: %w"

	// ファイル操作エラー
	ConvertErrorFormat = "%s %s の変換に失敗: %w"
	ConfigErrorFormat  = "%s 設定ファイル %s の読み込みに失敗: %w"

	// 成功メッセージ
	ConvertSuccessFormat = "%s %d件のサロゲートを変換しました"

	// 処理中メッセージ
	ProcessingFormat = "%s %s を処理中..."
)
