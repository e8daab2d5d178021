package config

import (
	_ "embed"
)

// DefaultConfigYAML 编译时嵌入的默认配置
//
//go:embed default.yaml
var DefaultConfigYAML []byte
