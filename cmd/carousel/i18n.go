// Package main provides localization for the carousel CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Generate marketing carousel images from structured slide data": "構造化スライドデータからマーケティング用カルーセル画像を生成",

		// Commands
		"Run the carousel HTTP service":               "カルーセルHTTPサービスを起動",
		"Render a carousel from a slides JSON file":   "スライドJSONファイルからカルーセルを描画",
		"Synthesize the builtin template assets":      "組み込みテンプレート素材を生成",
		"Show version information":                    "バージョン情報を表示",
		"carousel version %s":                         "carousel バージョン %s",

		// Flags
		"Path to a YAML config file":                                       "YAML設定ファイルのパス",
		"Directory holding 1.png, 2.png and 3.png template assets":         "1.png, 2.png, 3.png テンプレート素材のディレクトリ",
		"TTF file for headline text (bundled default when omitted)":        "見出しテキスト用TTFファイル（省略時は同梱フォント）",
		"TTF file for supporting text (bundled default when omitted)":      "サブテキスト用TTFファイル（省略時は同梱フォント）",
		"Timeout for featured image fetches in milliseconds":               "フィーチャー画像取得のタイムアウト（ミリ秒）",
		"Number of parallel slide workers":                                 "スライド並列ワーカー数",
		"Log level (debug, info, warn, error)":                             "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                          "すべてのログ出力を抑制",
		"Save intermediate rendering output":                               "中間レンダリング出力を保存",
		"Directory for debug output":                                       "デバッグ出力のディレクトリ",
		"HTTP listen port":                                                 "HTTP待ち受けポート",
		"Directory for generated images":                                   "生成画像のディレクトリ",
		"Base URL for download links (derived from requests when omitted)": "ダウンロードリンクのベースURL（省略時はリクエストから導出）",
		"Slides JSON file":                                                 "スライドJSONファイル",
		"Output directory for rendered images":                             "描画画像の出力ディレクトリ",
		"Write a Markdown run summary to this path":                        "Markdown形式の実行サマリーをこのパスに書き出す",
		"Output directory for template PNGs":                               "テンプレートPNGの出力ディレクトリ",
		"URL encoded into the QR decoration (omitted when empty)":          "QR装飾にエンコードするURL（空の場合は省略）",

		// Results
		"Output saved to %s":       "出力を %s に保存しました",
		"Templates written to %s":  "テンプレートを %s に書き出しました",
	})
}
