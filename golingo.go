// Package golingo is an offline-first translation core for travel apps.
//
// Golingo routes translation requests between an online AI provider and
// locally installed language packs, with TTL caching of online results
// and a durable key-value store behind both.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/LinguaLabs/golingo"
//	    "github.com/LinguaLabs/golingo/cache"
//	    "github.com/LinguaLabs/golingo/offline"
//	    "github.com/LinguaLabs/golingo/provider"
//	    "github.com/LinguaLabs/golingo/store"
//	)
//
//	func main() {
//	    kv := store.NewMemoryStore()
//	    mgr := offline.NewManager(kv)
//
//	    // Install a pack so "es" works without a network.
//	    _, err := mgr.DownloadPack(context.Background(), "es", "Spanish", golingo.QualityStandard)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    r := golingo.NewRouter(p,
//	        golingo.WithOffline(mgr),
//	        golingo.WithCache(cache.New(kv)),
//	    )
//
//	    result, err := r.Translate(context.Background(), "Hello", "en", "es")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Text) // Hola
//	}
package golingo
