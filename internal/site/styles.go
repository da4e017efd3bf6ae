package site

// pageStyles is inlined into index.html so the page works offline from the
// first load, before the service worker has cached anything.
const pageStyles = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  min-height: 100vh;
  color: #1f2937;
}
.container { max-width: 960px; margin: 0 auto; padding: 16px; }
.header {
  background: rgba(255, 255, 255, 0.95);
  border-radius: 12px;
  padding: 24px;
  text-align: center;
  margin-bottom: 16px;
  box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
}
.header h1 { font-size: 1.8rem; color: #2563eb; }
.location { color: #6b7280; margin-top: 4px; }
.meta-info {
  background: rgba(255, 255, 255, 0.9);
  border-radius: 8px;
  padding: 12px 16px;
  display: flex;
  flex-wrap: wrap;
  gap: 12px;
  justify-content: center;
  font-size: 0.9rem;
  color: #374151;
  margin-bottom: 8px;
}
.refresh-info {
  text-align: center;
  font-size: 0.8rem;
  color: rgba(255, 255, 255, 0.85);
  margin-bottom: 16px;
}
.no-items {
  background: rgba(255, 255, 255, 0.95);
  border-radius: 12px;
  padding: 48px 24px;
  text-align: center;
  color: #6b7280;
}
.no-items p:first-child { font-size: 1.4rem; margin-bottom: 8px; }
.category-section { margin-bottom: 24px; }
.category-title {
  color: #ffffff;
  font-size: 1.2rem;
  margin-bottom: 12px;
  text-shadow: 0 1px 2px rgba(0, 0, 0, 0.3);
}
.item-count { font-weight: normal; opacity: 0.8; }
.menu-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
  gap: 12px;
}
.menu-item {
  background: rgba(255, 255, 255, 0.95);
  border-radius: 10px;
  padding: 16px;
  box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
  display: flex;
  flex-direction: column;
}
.item-name { font-weight: 600; margin-bottom: 6px; }
.item-description {
  font-size: 0.88rem;
  color: #4b5563;
  flex: 1;
  margin-bottom: 10px;
}
.item-footer {
  display: flex;
  justify-content: space-between;
  align-items: center;
}
.item-price { font-weight: 700; color: #059669; }
.item-category {
  background: #eff6ff;
  color: #2563eb;
  font-size: 0.75rem;
  padding: 2px 8px;
  border-radius: 999px;
}
.footer {
  margin-top: 24px;
  padding: 16px;
  text-align: center;
  display: flex;
  gap: 16px;
  justify-content: center;
}
.footer a { color: #ffffff; }
@media print {
  body { background: #ffffff; color: #000000; }
  .refresh-info, .footer { display: none; }
  .menu-item { box-shadow: none; border: 1px solid #d1d5db; }
}
`
