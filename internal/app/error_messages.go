// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-tieba client.
//
// All Msg* constants are the user-facing notices shown by the host UI when a
// call to the backend fails or a session operation completes. Keeping them in
// one place ensures consistent wording throughout the client.
package app

// Notices shown for failed backend calls, one per error kind.
const (
	// MsgSessionExpired is shown when the backend answers 401; the stored
	// token has been dropped and the user is sent to the login screen.
	MsgSessionExpired = "登录已过期，请重新登录"

	// MsgForbidden is shown when the backend answers 403.
	MsgForbidden = "权限不足"

	// MsgNotFound is shown when the backend answers 404.
	MsgNotFound = "请求的资源不存在"

	// MsgInternalServerError is shown when the backend answers 500.
	MsgInternalServerError = "服务器内部错误"

	// MsgNetworkError is shown for every other failure that carries no
	// server-provided message, including transport failures and timeouts.
	MsgNetworkError = "网络错误，请稍后重试"
)

// Notices for session and upload operations.
const (
	MsgLoginSucceeded    = "登录成功"
	MsgLogoutSucceeded   = "已退出登录"
	MsgRegisterSucceeded = "注册成功，请登录"
	MsgLinkCopied        = "链接已复制"
	MsgCopyFailed        = "复制失败"

	// MsgFileTooLarge is shown when a file exceeds the upload size limit.
	MsgFileTooLarge = "文件大小超出限制"

	// MsgFileTypeNotAllowed is shown when a file's type is not in the
	// upload allow-list.
	MsgFileTypeNotAllowed = "不支持的文件类型"
)

// Notices produced by the terminal client itself.
const (
	MsgEmptyKeyword      = "请输入搜索关键词"
	MsgLoginFailed       = "登录失败，请稍后重试"
	MsgTokenNotSaved     = "登录成功，但无法保存登录状态"
	MsgNavigationFailed  = "页面跳转失败"
	MsgRequiredFields    = "请填写所有必填项"
	MsgPasswordsMismatch = "两次输入的密码不一致"
	MsgPageUnavailable   = "终端客户端暂不支持此页面"
	MsgJoinedTieba       = "已加入贴吧"
	MsgLeftTieba         = "已退出贴吧"
)
