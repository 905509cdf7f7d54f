package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/binary"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/perennia/storefront/internal/config"
)

// captureWriter captures response body/status while forwarding to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }
func (cw *captureWriter) Write(b []byte) (int, error) {
    if cw.limit <= 0 || cw.size < cw.limit {
        remain := cw.limit - cw.size
        if cw.limit <= 0 {
            cw.buf.Write(b)
        } else if remain > 0 {
            if int64(len(b)) <= remain {
                cw.buf.Write(b)
            } else {
                cw.buf.Write(b[:remain])
            }
        }
        cw.size += int64(len(b))
    }
    return cw.ResponseWriter.Write(b)
}

// Build a stable cache key honoring prefix/strategy.  The key uses the
// concrete request path, not the registered route pattern: on a
// parameterized route like /api/products/:id the pattern is identical
// for every id, and keying on it would serve one product's cached body
// for all of them.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
    r := c.Request()
    method := r.Method
    route := r.URL.Path
    query := r.URL.RawQuery

    parts := []string{cfg.Prefix}
    switch strings.ToLower(cfg.KeyStrategy) {
    case "route":
        parts = append(parts, "route", route)
    case "method_route":
        parts = append(parts, "method", method, "route", route)
    case "method_route_query":
        parts = append(parts, "method", method, "route", route, "q", query)
    default: // "route_query"
        parts = append(parts, "route", route, "q", query)
    }

    tail := strings.Join(parts[1:], ":")
    sum := sha1.Sum([]byte(tail))
    return fmt.Sprintf("%s:%x", parts[0], sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
    hdrJSON, err := json.Marshal(header)
    if err != nil {
        return nil, err
    }
    total := 4 + 4 + len(hdrJSON) + len(body)
    out := make([]byte, total)
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
    copy(out[8:8+len(hdrJSON)], hdrJSON)
    copy(out[8+len(hdrJSON):], body)
    return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
    if len(bs) < 8 {
        return 0, nil, nil, false
    }
    status = int(binary.BigEndian.Uint32(bs[0:4]))
    hlen := int(binary.BigEndian.Uint32(bs[4:8]))
    if 8+hlen > len(bs) || hlen < 0 {
        return 0, nil, nil, false
    }
    var hdr http.Header
    if hlen > 0 {
        if err := json.Unmarshal(bs[8:8+hlen], &hdr); err != nil {
            return 0, nil, nil, false
        }
    } else {
        hdr = make(http.Header)
    }
    body = bs[8+hlen:]
    return status, hdr, body, true
}

// ResponseCache returns a middleware that serves cached copies of public
// read responses out of Redis.  Only configured methods are considered,
// only 200 responses are stored, and oversized bodies are skipped.  When
// rdb is nil or caching is disabled, the middleware is a no-op so the
// service keeps working without Redis.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[c.Request().Method] {
                return next(c)
            }
            key := cacheKeyFrom(cfg, c)
            ctx, cancel := context.WithTimeout(c.Request().Context(), 300*time.Millisecond)
            cached, err := rdb.Get(ctx, key).Bytes()
            cancel()
            if err == nil {
                if status, hdr, body, ok := decodePayload(cached); ok {
                    h := c.Response().Header()
                    for k, vals := range hdr {
                        for _, v := range vals {
                            h.Add(k, v)
                        }
                    }
                    h.Set("X-Cache", "HIT")
                    return c.Blob(status, h.Get(echo.HeaderContentType), body)
                }
            }

            cw := &captureWriter{
                ResponseWriter: c.Response().Writer,
                status:         http.StatusOK,
                limit:          int64(cfg.MaxBodyBytes),
            }
            c.Response().Writer = cw
            if err := next(c); err != nil {
                return err
            }

            // Store only complete successful responses.
            if cw.status == http.StatusOK && (cfg.MaxBodyBytes <= 0 || cw.size <= int64(cfg.MaxBodyBytes)) {
                payload, err := encodePayload(cw.status, c.Response().Header().Clone(), cw.buf.Bytes())
                if err == nil {
                    sctx, scancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
                    _ = rdb.Set(sctx, key, payload, cfg.TTL).Err()
                    scancel()
                }
            }
            return nil
        }
    }
}
