// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-tieba/models"
)

func renderBuildInfoWindow(siteName string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("应用名称: ")
	b.WriteString(valueOrNA(siteName))
	b.WriteString("\n")
	b.WriteString("版本: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("构建日期: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("提交: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return overlayBoxStyle.Render(renderPage("关于", b.String(), "esc: 返回"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
