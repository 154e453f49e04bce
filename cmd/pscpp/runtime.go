package main

import (
	"os"
	"path/filepath"

	"github.com/pure11/pscpp/internal/config"
)

// writeRuntime 把运行时头文件和 Makefile 写到输出目录
// 内存策略只影响 Makefile 是否定义 USE_GC，头文件本身两种策略通用
func writeRuntime(outputDir string, cfg *config.Config) error {
	headerPath := filepath.Join(outputDir, "purescript.hh")
	if err := os.WriteFile(headerPath, []byte(runtimeHeader), 0644); err != nil {
		return &writeFileError{path: headerPath, err: err}
	}

	makefilePath := filepath.Join(outputDir, "Makefile")
	if err := os.WriteFile(makefilePath, []byte(makefileFor(cfg)), 0644); err != nil {
		return &writeFileError{path: makefilePath, err: err}
	}
	return nil
}

// makefileFor 按配置的内存策略生成 Makefile
func makefileFor(cfg *config.Config) string {
	flags := "-std=c++11 -Wall"
	libs := ""
	if cfg.Codegen.Memory == config.MemoryGC {
		flags += " -DUSE_GC"
		libs = " -lgc -lgccpp"
	}
	return `CXX ?= c++
CXXFLAGS = ` + flags + `
TARGET = ` + cfg.Project.Module + `
SRCS = $(wildcard *.cpp)
OBJS = $(SRCS:.cpp=.o)

$(TARGET): $(OBJS)
	$(CXX) $(CXXFLAGS) -o $@ $(OBJS)` + libs + `

%.o: %.cpp purescript.hh
	$(CXX) $(CXXFLAGS) -c -o $@ $<

clean:
	rm -f $(TARGET) $(OBJS)

.PHONY: clean
`
}

// runtimeHeader 托管分配契约
// 生成的代码只使用 managed<T>、make_managed<T> 和 make_managed_and_finalized<T>，
// 具体分配策略由 USE_GC 在构建期选择
const runtimeHeader = `#ifndef PSCPP_RUNTIME_HH
#define PSCPP_RUNTIME_HH

#include <utility>

#if defined(USE_GC)
  #define GC_THREADS
  #include <gc/gc_cpp.h>
  #include <gc/gc_allocator.h>
  #define PSCPP_MANAGED(T) T*
  #define PSCPP_ALLOC(T) new (GC) T
  #define PSCPP_ALLOC_FINALIZED(T) new (GC, [](void* p, void*){ static_cast<T*>(p)->~T(); }) T
#else
  #include <memory>
  #define PSCPP_MANAGED(T) std::shared_ptr<T>
  #define PSCPP_ALLOC(T) std::make_shared<T>
  #define PSCPP_ALLOC_FINALIZED(T) PSCPP_ALLOC(T)
#endif

namespace PureScript {
  template <typename T>
  using managed = PSCPP_MANAGED(T);

  template <typename T, typename... Args>
  inline static auto make_managed(Args&&... args) -> PSCPP_MANAGED(T) {
    return PSCPP_ALLOC(T)(std::forward<Args>(args)...);
  }

  template <typename T, typename... Args>
  inline static auto make_managed_and_finalized(Args&&... args) -> PSCPP_MANAGED(T) {
    return PSCPP_ALLOC_FINALIZED(T)(std::forward<Args>(args)...);
  }
}

#undef PSCPP_MANAGED
#undef PSCPP_ALLOC
#undef PSCPP_ALLOC_FINALIZED

#endif
`
