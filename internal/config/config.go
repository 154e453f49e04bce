package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pure11/pscpp/internal/i18n"
)

// 内存策略取值
const (
	MemoryARC = "arc"
	MemoryGC  = "gc"
)

// Config pscpp 项目配置
type Config struct {
	Project ProjectConfig `toml:"project"`
	Codegen CodegenConfig `toml:"codegen"`
}

// ProjectConfig 项目配置
type ProjectConfig struct {
	Module string `toml:"module"` // 入口模块名，如 "Main"
}

// CodegenConfig 代码生成配置
type CodegenConfig struct {
	Memory string `toml:"memory"` // 内存策略: arc 或 gc
	Output string `toml:"output"` // 生成代码的输出目录
}

// InvalidMemoryError 不支持的内存策略
type InvalidMemoryError struct {
	Value string
}

func (e *InvalidMemoryError) Error() string {
	return i18n.T(i18n.ErrBadMemoryStrategy, e.Value)
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Module: "Main",
		},
		Codegen: CodegenConfig{
			Memory: MemoryARC,
			Output: "output",
		},
	}
}

// FindAndLoad 从指定目录向上查找 pscpp.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 pscpp.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, "pscpp.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}

	// 缺省字段使用默认值
	if config.Project.Module == "" {
		config.Project.Module = "Main"
	}
	if config.Codegen.Memory == "" {
		config.Codegen.Memory = MemoryARC
	}
	if config.Codegen.Output == "" {
		config.Codegen.Output = "output"
	}

	if config.Codegen.Memory != MemoryARC && config.Codegen.Memory != MemoryGC {
		return nil, &InvalidMemoryError{Value: config.Codegen.Memory}
	}

	return &config, nil
}

// GetProjectRoot 获取项目根目录（pscpp.toml 所在目录）
func GetProjectRoot(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}
