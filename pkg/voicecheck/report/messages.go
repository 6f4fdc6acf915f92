package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// japanese holds the operator-facing translations keyed by their English format.
var japanese = map[string]string{
	"=== Voice ID mismatch check ===":          "=== 音声ID割り当てミスマッチチェック ===",
	"=== Voice ID mismatch repair ===":         "=== 音声IDミスマッチ自動修正 ===",
	"=== Unused voice files ===":               "=== 未使用音声ファイルのテキスト調査 ===",
	"Workbook voice mappings: %d":              "Excel音声マッピング数: %d",
	"Checked lines: %d":                        "チェック対象数: %d",
	"Mismatches: %d":                           "ミスマッチ数: %d",
	"Mismatches detected":                      "ミスマッチが検出されました",
	"No mismatches detected":                   "ミスマッチは検出されませんでした",
	"Report saved to %s":                       "詳細ログを %s に保存しました",
	"Fixes applied: %d":                        "修正実行数: %d",
	"Fixed %d voice ids and updated %s":        "%d件の音声IDを修正し、%sを更新しました",
	"Nothing to fix":                           "修正対象がありませんでした",
	"Voice id changes":                         "音声IDの修正",
	"Texts not found in workbook: %d":          "Excelに見つからないテキスト: %d",
	"Workbook texts shared by several ids: %d": "複数の音声IDで重複するExcelテキスト: %d",
	"Voice ids in use: %d":                     "使用中音声ID数: %d",
	"Audio files available: %d":                "利用可能ファイル数: %d",
	"Unused files: %d":                         "未使用ファイル数: %d",
	"With workbook text: %d":                   "対応テキストあり: %d",
	"Without workbook text: %d":                "対応テキストなし: %d",
	"Unused voice files with text":             "未使用だがテキストがある音声ファイル",
	"Voice files without text":                 "対応テキストが見つからない音声ファイル",
	"Voice ID":                                 "音声ID",
	"Location":                                 "場所",
	"Scenario":                                 "シナリオ",
	"Workbook":                                 "Excel",
	"From":                                     "修正前",
	"To":                                       "修正後",
	"Text":                                     "テキスト",
	"Speaker":                                  "話者",
	"Dataset could not be read: %s":            "シナリオファイルを読み込めませんでした: %s",
	"Audio directory could not be read: %s":    "音声フォルダを読み込めませんでした: %s",
}

func init() {
	for key, msg := range japanese {
		if err := message.SetString(language.Japanese, key, msg); err != nil {
			panic(err)
		}
	}
}

// NewPrinter returns a printer for the operator language.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
