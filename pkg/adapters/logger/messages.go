package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Generating carousel with %d slides": "%d 枚のスライドでカルーセルを生成中",
		"Carousel completed: %d slides":      "カルーセル生成完了: %d 枚",

		// Template store
		"Template %s not loadable: %s":   "テンプレート %s を読み込めません: %s",
		"Template %s not decodable: %s":  "テンプレート %s をデコードできません: %s",
		"Template %s loaded: %dx%d":      "テンプレート %s を読み込みました: %dx%d",
		"Failed to load template %s: %s": "テンプレート %s の読み込みに失敗しました: %s",

		// Font store
		"Font %s unavailable, using bundled default: %s": "フォント %s が見つからないため同梱フォントを使用します: %s",
		"Font %s unreadable, using bundled default: %s":  "フォント %s を解析できないため同梱フォントを使用します: %s",

		// Featured image stage
		"Fetching featured image from %s":           "%s からフィーチャー画像を取得中",
		"Featured image prepared: %dx%d -> %dx%d":   "フィーチャー画像を準備しました: %dx%d -> %dx%d",
		"Slide %d featured image degraded: %s":      "スライド %d のフィーチャー画像を省略しました: %s",
		"Featured image placed at (%d, %d), %dx%d":  "フィーチャー画像を (%d, %d) に配置しました（%dx%d）",

		// HTTP server
		"Listening on http://localhost:%d": "http://localhost:%d で待ち受け中",
		"Shutting down server...":          "サーバーを停止中...",
		"Generated %d images for request":  "リクエストに対して %d 枚の画像を生成しました",
	})
}
