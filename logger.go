package mdenv

import (
	"log"
	"os"
)

// Logger 全局日志记录器，仅在启用调试时输出缓存失效信息
var Logger = log.New(os.Stderr, "[mdenv] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}
